package domain

// Provisioning request types, as delivered by the infrastructure
// orchestrator.
const (
	RequestCreate = "Create"
	RequestUpdate = "Update"
	RequestDelete = "Delete"
)

// Terminal provisioning statuses.
const (
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

// ResourceProperties carries the target of a provisioning request. The
// policy document is an arbitrary JSON object; it is re-serialized to its
// canonical form before being applied.
type ResourceProperties struct {
	BucketName     string                 `json:"BucketName"`
	PolicyDocument map[string]interface{} `json:"PolicyDocument,omitempty"`
}

// ProvisioningEvent is a resource-lifecycle request. It arrives as the
// invocation payload, is consumed synchronously, and is never persisted.
type ProvisioningEvent struct {
	RequestType        string             `json:"RequestType"`
	ResponseURL        string             `json:"ResponseURL"`
	StackID            string             `json:"StackId"`
	RequestID          string             `json:"RequestId"`
	LogicalResourceID  string             `json:"LogicalResourceId"`
	PhysicalResourceID string             `json:"PhysicalResourceId,omitempty"`
	ResourceProperties ResourceProperties `json:"ResourceProperties"`
}

// ProvisioningResponse is the terminal status transmitted to the event's
// callback URL. Exactly one is sent per provisioning invocation; the stack,
// request and logical identifiers echo the triggering event unchanged.
type ProvisioningResponse struct {
	Status             string                 `json:"Status"`
	Reason             string                 `json:"Reason"`
	PhysicalResourceID string                 `json:"PhysicalResourceId"`
	StackID            string                 `json:"StackId"`
	RequestID          string                 `json:"RequestId"`
	LogicalResourceID  string                 `json:"LogicalResourceId"`
	Data               map[string]interface{} `json:"Data"`
}
