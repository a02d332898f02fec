package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientRequest_Transition(t *testing.T) {
	statuses := []RequestStatus{
		RequestStatusPending,
		RequestStatusAccepted,
		RequestStatusRejected,
		RequestStatusCancelled,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				r := &ClientRequest{ID: "req1", Status: from}

				ok := r.Transition(to)

				if from == RequestStatusPending && to != RequestStatusPending {
					assert.True(t, ok)
					assert.Equal(t, to, r.Status)
					assert.True(t, r.Status.IsTerminal())
					return
				}

				assert.False(t, ok)
				assert.Equal(t, from, r.Status)
			})
		}
	}
}

func TestRequestStatus_IsOpen(t *testing.T) {
	assert.True(t, RequestStatusPending.IsOpen())
	assert.True(t, RequestStatusAccepted.IsOpen())
	assert.False(t, RequestStatusRejected.IsOpen())
	assert.False(t, RequestStatusCancelled.IsOpen())
}
