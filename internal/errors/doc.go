// Package errors provides structured error handling for the arena-api project.
//
// Errors carry a Code, a message, an optional wrapped cause, and optional
// metadata. Codes map onto HTTP status codes at the handler layer via
// Code.HTTPStatus.
//
// Creating errors:
//
//	err := errors.NotFound("character not found")
//	err := errors.InvalidArgumentf("unknown move type: %s", move)
//
// Adding metadata:
//
//	err := errors.NotFound("character not found").
//	    WithMeta("character_id", id)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get character")
//	}
//
// Checking errors:
//
//	if errors.IsNotFound(err) {
//	    // handle missing character
//	}
//
// Validating config and input:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("level", int(input.Level), 1, 10, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Layer guidelines: repositories return NotFound/AlreadyExists with ids in
// metadata and wrap storage errors; orchestrators return InvalidArgument for
// bad input and FailedPrecondition for matchup/continuation violations;
// handlers translate codes to HTTP statuses and log internal errors.
package errors
