package model

// Wire types for the Checkout Zone REST API. Field names and formats follow
// the backend's JSON serialization exactly; the client never invents fields.

// Role determines which operations the UI offers a logged-in user.
type Role string

const (
	RoleUser             Role = "USER"
	RoleEquipmentManager Role = "EQUIPMENT_MANAGER"
	RoleAdmin            Role = "ADMIN"
)

// IsManager reports whether the role may approve, fulfill and return.
func (r Role) IsManager() bool {
	return r == RoleEquipmentManager || r == RoleAdmin
}

// EquipmentStatus is set exclusively by server-side transitions.
type EquipmentStatus string

const (
	StatusAvailable     EquipmentStatus = "AVAILABLE"
	StatusCheckedOut    EquipmentStatus = "CHECKED_OUT"
	StatusInMaintenance EquipmentStatus = "IN_MAINTENANCE"
	StatusRetired       EquipmentStatus = "RETIRED"
)

// EquipmentCondition is recorded at checkout and again at return.
type EquipmentCondition string

const (
	ConditionNew       EquipmentCondition = "NEW"
	ConditionExcellent EquipmentCondition = "EXCELLENT"
	ConditionGood      EquipmentCondition = "GOOD"
	ConditionFair      EquipmentCondition = "FAIR"
	ConditionPoor      EquipmentCondition = "POOR"
	ConditionDamaged   EquipmentCondition = "DAMAGED"
)

// ParseCondition validates a user-supplied condition string.
func ParseCondition(s string) (EquipmentCondition, bool) {
	switch EquipmentCondition(s) {
	case ConditionNew, ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor, ConditionDamaged:
		return EquipmentCondition(s), true
	}
	return "", false
}

// RequestStatus is the lifecycle state of a checkout request.
// COMPLETED is what the backend sets when an approved request is fulfilled.
type RequestStatus string

const (
	RequestPending   RequestStatus = "PENDING"
	RequestApproved  RequestStatus = "APPROVED"
	RequestRejected  RequestStatus = "REJECTED"
	RequestCompleted RequestStatus = "COMPLETED"
	RequestCancelled RequestStatus = "CANCELLED"
)

// User identity is immutable for the lifetime of a session.
type User struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Department string `json:"department,omitempty"`
	EmployeeID string `json:"employeeId,omitempty"`
	Role       Role   `json:"role"`
	Active     bool   `json:"active"`
}

// FullName returns "First Last" for display.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type Equipment struct {
	ID           int64              `json:"id"`
	InternalID   string             `json:"internalId"`
	SerialNumber string             `json:"serialNumber,omitempty"`
	Name         string             `json:"name"`
	Brand        string             `json:"brand,omitempty"`
	Model        string             `json:"model,omitempty"`
	Type         string             `json:"type"`
	Condition    EquipmentCondition `json:"condition"`
	Status       EquipmentStatus    `json:"status"`
	Location     string             `json:"location,omitempty"`
	Notes        string             `json:"notes,omitempty"`
}

type CheckoutRequest struct {
	ID             int64         `json:"id"`
	RequestedBy    User          `json:"requestedBy"`
	EquipmentItems []Equipment   `json:"equipmentItems"`
	Status         RequestStatus `json:"status"`
	RequestedDate  Date          `json:"requestedDate"`
	NeededByDate   Date          `json:"neededByDate"`
	Purpose        string        `json:"purpose"`
	ApprovedBy     *User         `json:"approvedBy,omitempty"`
	ApprovalDate   *DateTime     `json:"approvalDate,omitempty"`
	ApprovalNotes  string        `json:"approvalNotes,omitempty"`
}

// EquipmentNames joins the names of all requested items for display.
func (r CheckoutRequest) EquipmentNames() string {
	names := ""
	for i, e := range r.EquipmentItems {
		if i > 0 {
			names += ", "
		}
		names += e.Name
	}
	return names
}

type CheckoutRecord struct {
	ID                  int64               `json:"id"`
	User                User                `json:"user"`
	Equipment           Equipment           `json:"equipment"`
	CheckoutDate        Date                `json:"checkoutDate"`
	ExpectedReturnDate  Date                `json:"expectedReturnDate"`
	ActualReturnDate    *Date               `json:"actualReturnDate,omitempty"`
	ConditionAtCheckout EquipmentCondition  `json:"conditionAtCheckout"`
	ConditionAtReturn   *EquipmentCondition `json:"conditionAtReturn,omitempty"`
	ReturnNotes         string              `json:"returnNotes,omitempty"`
	CheckedOutByManager *User               `json:"checkedOutByManager,omitempty"`
	ReceivedByManager   *User               `json:"receivedByManager,omitempty"`
}

// Open reports whether the record has no return recorded yet.
func (c CheckoutRecord) Open() bool {
	return c.ActualReturnDate == nil
}
