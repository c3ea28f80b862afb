// Package form ties rule evaluation to error display.
//
// A Registry maps every field id to the id of its error slot, by default
// "error_" + field id. A Presenter writes messages into those slots through a
// dom.Adapter: ShowError fills and reveals one slot, ClearErrors empties and
// hides every registered slot. Validator checks one field against its
// validator.RuleSet and, on failure, shows the first failing message.
//
//	registry := form.NewRegistry("name", "email")
//	presenter := form.NewPresenter(adapter, registry)
//	v := form.NewValidator(presenter, form.WithClock(clock))
//
//	_ = presenter.ClearErrors(ctx)
//	ok, err := v.ValidateField(ctx, form.Field{ID: "email", Value: input}, rules)
//
// A passing field leaves its slot untouched; clearing is the caller's job,
// usually once before a full-form pass.
package form
