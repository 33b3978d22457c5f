// Package messages holds the message catalog consumed by the validation engine.
//
// A Catalog maps a Key (such as REQUIRED or MIN_LENGTH) to a template string
// with positional placeholders {0}, {1}, ... which Format substitutes in
// argument order. Two built-in catalogs are provided: Japanese (the default
// used by the engine) and English.
//
// # Usage
//
//	msg := messages.Japanese().Format(messages.Range, 1, 10)
//	// "1 ～ 10 の数値を入力してください."
//
// Catalogs can be loaded from YAML or JSON files and overlaid on a built-in
// one:
//
//	custom, err := messages.LoadFile(ctx, "messages.en.yaml")
//	if err != nil {
//	    return err
//	}
//	catalog := messages.English().Merge(custom)
//
// # Error Kinds
//
// KindOf maps every violation key to one of the reported kinds
// (missing required, format invalid, bounds violation, cross-field mismatch,
// configuration invalid). Label keys such as DATE_PART_Y have no kind.
package messages
