package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"docdigest/internal/domain"
)

// provision applies or removes a bucket policy and reports a terminal status
// to the event's callback URL. Exactly one response is transmitted per
// invocation, whatever branch runs or fails: an un-reported request would
// leave the external orchestrator blocked indefinitely.
func (d *Dispatcher) provision(ctx context.Context, ev *domain.ProvisioningEvent) Response {
	bucket := ev.ResourceProperties.BucketName
	log.Printf("provision: %s request for bucket %s", ev.RequestType, bucket)

	resp := d.newProvisioningResponse(ev)

	switch ev.RequestType {
	case domain.RequestCreate, domain.RequestUpdate:
		if err := d.applyPolicy(ctx, ev); err != nil {
			log.Printf("provision: apply policy on %s: %v", bucket, err)
			resp.Status = domain.StatusFailed
			resp.Data["Error"] = err.Error()
		} else {
			log.Printf("provision: applied bucket policy to %s", bucket)
			resp.Data["Message"] = fmt.Sprintf("Bucket policy applied successfully to %s", bucket)
		}

	case domain.RequestDelete:
		// Removal failure is non-fatal; the lifecycle contract still needs
		// a terminal SUCCESS.
		if err := d.storage.DeleteBucketPolicy(ctx, bucket); err != nil {
			log.Printf("provision: could not remove bucket policy from %s: %v", bucket, err)
		} else {
			log.Printf("provision: removed bucket policy from %s", bucket)
		}
		resp.Data["Message"] = fmt.Sprintf("Bucket policy removal completed for %s", bucket)

	default:
		log.Printf("provision: no action for request type %q", ev.RequestType)
		resp.Data["Message"] = fmt.Sprintf("No action taken for request type %s", ev.RequestType)
	}

	d.callback.Send(ctx, ev.ResponseURL, resp)
	return successResponse()
}

func (d *Dispatcher) applyPolicy(ctx context.Context, ev *domain.ProvisioningEvent) error {
	policy, err := json.Marshal(ev.ResourceProperties.PolicyDocument)
	if err != nil {
		return fmt.Errorf("serializing policy document: %w", err)
	}
	return d.storage.PutBucketPolicy(ctx, ev.ResourceProperties.BucketName, string(policy))
}

// newProvisioningResponse echoes the event's identifiers and fills in a
// physical resource id: the caller-supplied one, else the log stream name,
// else a fresh UUID.
func (d *Dispatcher) newProvisioningResponse(ev *domain.ProvisioningEvent) *domain.ProvisioningResponse {
	physicalID := ev.PhysicalResourceID
	if physicalID == "" {
		physicalID = d.logStream
	}
	if physicalID == "" {
		physicalID = uuid.NewString()
	}

	return &domain.ProvisioningResponse{
		Status:             domain.StatusSuccess,
		Reason:             fmt.Sprintf("See CloudWatch Log Stream: %s", d.logStream),
		PhysicalResourceID: physicalID,
		StackID:            ev.StackID,
		RequestID:          ev.RequestID,
		LogicalResourceID:  ev.LogicalResourceID,
		Data:               map[string]interface{}{},
	}
}
