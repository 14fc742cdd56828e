// Package validator turns the strutil predicates into field-level validation
// rules that can be evaluated together and reported as a single error.
//
// A Rule couples a Check function with the ValidationError to report when the
// check fails. Apply evaluates any number of rules and collects the failures
// into ValidationErrors, which implements error:
//
//	err := validator.Apply(
//	    validator.Required("email", form.Email),
//	    validator.Email("email", form.Email),
//	    validator.Integer("age", form.Age),
//	    validator.Date("birthday", form.Birthday, "dd.mm.yyyy"),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // render verrs.Get(field) next to the input
//	    }
//	}
//
// Every ValidationError carries a TranslationKey (for example
// "validation.date") and TranslationValues so messages can be localised by
// the caller.
//
// Rules hold no state beyond the values captured when they are built, so they
// are safe to construct and apply from multiple goroutines.
package validator
