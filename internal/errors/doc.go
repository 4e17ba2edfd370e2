// Package errors provides structured errors for the rpg-alignment service.
//
// Errors carry a Code, a user-facing message, an optional cause and free-form
// metadata. Codes map onto gRPC status codes for the AlignmentService and onto
// HTTP status codes for the view endpoints.
//
// # Basic Usage
//
//	err := errors.NotFoundf("character %s not found", id)
//	err := errors.InvalidArgument("preset is required").WithMeta("character_id", id)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Update(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to apply alignment delta")
//	}
//
// # Layer-Specific Guidelines
//
// Repositories return NotFound/Aborted/Internal and wrap driver errors.
// Orchestrators validate inputs (InvalidArgument) and wrap repository errors.
// Handlers convert with ToGRPCError or Code.HTTPStatus and never invent codes.
package errors
