package apierrors

const (
	MsgFieldRequired     = "fieldRequired"
	MsgFieldNotInteger   = "fieldNotInteger"
	MsgFieldNotString    = "fieldNotString"
	MsgFieldOutOfRange   = "fieldOutOfRange"
	MsgFieldNotISO8601   = "fieldNotISO8601"
	MsgFieldInvalid      = "fieldInvalid"
	MsgFieldInvalidType  = "fieldInvalidType"
	MsgOffsetNotMultiple = "offsetNotMultiple"
	MsgUnexpectedField   = "unexpectedField"
	MsgInvalidFieldValue = "invalidFieldValue"
	MsgInvalidJSONBody   = "invalidJSONBody"
	MsgRouteNotFound     = "routeNotFound"
)

// Locations of a rejected input, named after where the value came from.
const (
	LocationBody   = "body"
	LocationQuery  = "query"
	LocationParams = "params"
)
