package tracing

// Span and attribute names for registration submissions.
const (
	SpanSubmit = "registration.submit"

	AttrName          = "registration.name"
	AttrDepartment    = "registration.department"
	AttrRegNumber     = "registration.reg_number"
	AttrStateOfOrigin = "registration.state_of_origin"
	AttrAge           = "registration.age"
	AttrReceiptID     = "registration.receipt_id"

	EventAccepted = "registration.accepted"
)
