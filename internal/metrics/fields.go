package metrics

// Attribute keys shared by OTel instruments.
const (
	AttrMethod = "method"
	AttrPath   = "path"
	AttrStatus = "status"
	AttrKind   = "kind"
	AttrReason = "reason"
)
