package request

import "strings"

// MaterializeRequest is the body of the materialization trigger endpoints.
// Everything is optional: the engine fetches the baseline by the path id and
// never trusts a request body for baseline content (it may be stale).
type MaterializeRequest struct {
	ProjectID         string `json:"project_id"`
	DryRun            bool   `json:"dry_run"`
	ForceRewriteZeros bool   `json:"force_rewrite_zeros"`
}

func (r MaterializeRequest) ResolveProjectID() string {
	return strings.TrimSpace(r.ProjectID)
}

// MergeQueryFlags lets operators flip the safety switches from query params
// without crafting a body; either source may enable a flag, none can disable
// what the other enabled.
func (r MaterializeRequest) MergeQueryFlags(dryRun, force bool) MaterializeRequest {
	r.DryRun = r.DryRun || dryRun
	r.ForceRewriteZeros = r.ForceRewriteZeros || force
	return r
}
