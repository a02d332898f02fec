package entity

// RequestStatus is the lifecycle state of a ClientRequest.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// IsOpen reports whether a request in this status blocks a new request for the same pair.
func (s RequestStatus) IsOpen() bool {
	return s == RequestStatusPending || s == RequestStatusAccepted
}

// IsTerminal reports whether no further transition is possible.
func (s RequestStatus) IsTerminal() bool {
	return s != RequestStatusPending
}

// ClientRequest is a client's solicitation of representation from a lawyer.
type ClientRequest struct {
	ID          string        `json:"id"`
	Client      PartySnapshot `json:"client"`
	Lawyer      PartySnapshot `json:"lawyer"`
	CaseDetails CaseTemplate  `json:"caseDetails"`
	Status      RequestStatus `json:"status"`
}

// Transition moves a pending request to the target terminal status.
// It returns false and leaves the request untouched for any other move.
func (r *ClientRequest) Transition(to RequestStatus) bool {
	if r.Status.IsTerminal() {
		return false
	}

	switch to {
	case RequestStatusAccepted, RequestStatusRejected, RequestStatusCancelled:
		r.Status = to
		return true
	default:
		return false
	}
}

// Involves reports whether userID is either party of the request.
func (r *ClientRequest) Involves(userID string) bool {
	return r.Client.ID == userID || r.Lawyer.ID == userID
}

// ChatID returns the deterministic id of the chat provisioned when this request is accepted.
func (r *ClientRequest) ChatID() string {
	return ChatIDForRequest(r.ID)
}

// Clone returns a deep copy of the request.
func (r *ClientRequest) Clone() *ClientRequest {
	if r == nil {
		return nil
	}

	out := *r
	out.CaseDetails = *r.CaseDetails.Clone()

	return &out
}
