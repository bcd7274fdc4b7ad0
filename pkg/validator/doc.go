// Package validator applies declarative validation rules to request data and
// collects field-keyed errors.
//
// Rules are plain closures, so handlers list exactly the constraints each
// request shape carries, in one place, without struct tags:
//
//	err := validator.Apply(
//	    validator.RequiredString("email", req.Email),
//	    validator.ValidEmail("email", req.Email),
//	    validator.MinLenString("name", req.Name, 2),
//	    validator.MaxLenString("name", req.Name, 255),
//	)
//	if err != nil {
//	    // err is validator.ValidationErrors with per-field messages
//	}
//
// ValidationErrors implements error and is mapped by pkg/response to a 422
// payload carrying field-level detail.
package validator
