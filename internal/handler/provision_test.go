package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"docdigest/internal/domain"
)

func provisioningEvent(requestType string) json.RawMessage {
	ev := map[string]interface{}{
		"RequestType":       requestType,
		"ResponseURL":       "http://callback.test/reply",
		"StackId":           "stack-1",
		"RequestId":         "req-1",
		"LogicalResourceId": "logical-1",
		"ResourceProperties": map[string]interface{}{
			"BucketName": "b1",
			"PolicyDocument": map[string]interface{}{
				"Version":   "2012-10-17",
				"Statement": []interface{}{},
			},
		},
	}
	raw, _ := json.Marshal(ev)
	return raw
}

func TestProvision_Create_AppliesPolicyAndReportsSuccess(t *testing.T) {
	dispatcher, d := newTestDispatcher(allEnabledConfig())

	d.storage.On("PutBucketPolicy", mock.Anything, "b1", mock.MatchedBy(func(policy string) bool {
		var doc map[string]interface{}
		return json.Unmarshal([]byte(policy), &doc) == nil && doc["Version"] == "2012-10-17"
	})).Return(nil)
	d.callback.On("Send", mock.Anything, "http://callback.test/reply", mock.MatchedBy(func(r *domain.ProvisioningResponse) bool {
		return r.Status == domain.StatusSuccess &&
			r.StackID == "stack-1" && r.RequestID == "req-1" && r.LogicalResourceID == "logical-1"
	})).Return(true)

	resp, err := dispatcher.Handle(context.Background(), provisioningEvent("Create"))

	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	d.storage.AssertExpectations(t)
	d.callback.AssertNumberOfCalls(t, "Send", 1)
}

func TestProvision_Update_AppliesPolicy(t *testing.T) {
	dispatcher, d := newTestDispatcher(allEnabledConfig())

	d.storage.On("PutBucketPolicy", mock.Anything, "b1", mock.Anything).Return(nil)
	d.callback.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(true)

	_, err := dispatcher.Handle(context.Background(), provisioningEvent("Update"))

	assert.NoError(t, err)
	d.storage.AssertExpectations(t)
	d.callback.AssertNumberOfCalls(t, "Send", 1)
}

func TestProvision_ApplyFailure_ReportsFailed(t *testing.T) {
	dispatcher, d := newTestDispatcher(allEnabledConfig())

	d.storage.On("PutBucketPolicy", mock.Anything, "b1", mock.Anything).Return(errors.New("access denied"))
	d.callback.On("Send", mock.Anything, "http://callback.test/reply", mock.MatchedBy(func(r *domain.ProvisioningResponse) bool {
		errText, _ := r.Data["Error"].(string)
		return r.Status == domain.StatusFailed && errText != "" &&
			r.StackID == "stack-1" && r.RequestID == "req-1" && r.LogicalResourceID == "logical-1"
	})).Return(true)

	resp, err := dispatcher.Handle(context.Background(), provisioningEvent("Create"))

	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	d.callback.AssertNumberOfCalls(t, "Send", 1)
}

func TestProvision_Delete_RemovalFailure_StillReportsSuccess(t *testing.T) {
	dispatcher, d := newTestDispatcher(allEnabledConfig())

	d.storage.On("DeleteBucketPolicy", mock.Anything, "b1").Return(errors.New("no such policy"))
	d.callback.On("Send", mock.Anything, "http://x", mock.MatchedBy(func(r *domain.ProvisioningResponse) bool {
		return r.Status == domain.StatusSuccess
	})).Return(true)

	raw := json.RawMessage(`{"RequestType":"Delete","ResponseURL":"http://x","ResourceProperties":{"BucketName":"b1"}}`)
	resp, err := dispatcher.Handle(context.Background(), raw)

	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	d.callback.AssertNumberOfCalls(t, "Send", 1)
}

func TestProvision_UnknownRequestType_StillReports(t *testing.T) {
	dispatcher, d := newTestDispatcher(allEnabledConfig())

	d.callback.On("Send", mock.Anything, mock.Anything, mock.MatchedBy(func(r *domain.ProvisioningResponse) bool {
		return r.Status == domain.StatusSuccess
	})).Return(true)

	_, err := dispatcher.Handle(context.Background(), provisioningEvent("Read"))

	assert.NoError(t, err)
	d.callback.AssertNumberOfCalls(t, "Send", 1)
	d.storage.AssertNotCalled(t, "PutBucketPolicy", mock.Anything, mock.Anything, mock.Anything)
	d.storage.AssertNotCalled(t, "DeleteBucketPolicy", mock.Anything, mock.Anything)
}

func TestProvision_PhysicalResourceID_EchoedWhenSupplied(t *testing.T) {
	dispatcher, d := newTestDispatcher(allEnabledConfig())

	d.storage.On("DeleteBucketPolicy", mock.Anything, "b1").Return(nil)
	d.callback.On("Send", mock.Anything, mock.Anything, mock.MatchedBy(func(r *domain.ProvisioningResponse) bool {
		return r.PhysicalResourceID == "phys-1"
	})).Return(true)

	raw := json.RawMessage(`{"RequestType":"Delete","ResponseURL":"http://x","PhysicalResourceId":"phys-1","ResourceProperties":{"BucketName":"b1"}}`)
	_, err := dispatcher.Handle(context.Background(), raw)

	assert.NoError(t, err)
	d.callback.AssertExpectations(t)
}

func TestProvision_PhysicalResourceID_FallsBackToLogStream(t *testing.T) {
	dispatcher, d := newTestDispatcher(allEnabledConfig())

	d.storage.On("DeleteBucketPolicy", mock.Anything, "b1").Return(nil)
	d.callback.On("Send", mock.Anything, mock.Anything, mock.MatchedBy(func(r *domain.ProvisioningResponse) bool {
		return r.PhysicalResourceID == "log-stream-1"
	})).Return(true)

	raw := json.RawMessage(`{"RequestType":"Delete","ResponseURL":"http://x","ResourceProperties":{"BucketName":"b1"}}`)
	_, err := dispatcher.Handle(context.Background(), raw)

	assert.NoError(t, err)
	d.callback.AssertExpectations(t)
}
