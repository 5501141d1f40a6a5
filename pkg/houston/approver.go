package houston

import "context"

// Approver gates writing amended fields back to a control document.
//
// Implementations:
//   - ForcedApprover: approves without asking (--yes)
//   - InteractiveApprover: asks for y/N on a line-based prompt
//   - ConfirmApprover: asks with a terminal UI confirmation
type Approver interface {
	// RequestApproval asks whether the amendments to path may be written.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//   - path: Control document that would be rewritten
	//   - summary: Human-readable list of amendments
	//
	// Returns:
	//   - bool: true if approved, false if denied
	//   - error: Any error that occurred during the approval process
	RequestApproval(ctx context.Context, path, summary string) (bool, error)
}
