package payment

import "strconv"

// Target identifies which bill occurrence a payment applies to. Exactly
// two implementations exist and exactly one form is serialized per
// payment; the interface is sealed so both can never be sent together.
type Target interface {
	encode(fields map[string]string)
}

// ValueTarget references a materialized monthly value record. Preferred
// whenever the backend has already generated the month's instance.
type ValueTarget struct {
	BillValueID int64
}

func (t ValueTarget) encode(fields map[string]string) {
	fields["bill_value_id"] = strconv.FormatInt(t.BillValueID, 10)
}

// FallbackTarget addresses an occurrence by (bill, month, year)
// coordinates. Used when no instance has been materialized yet; the
// backend creates one lazily from it.
type FallbackTarget struct {
	BillID int64
	Month  int
	Year   int
}

func (t FallbackTarget) encode(fields map[string]string) {
	fields["bill_id"] = strconv.FormatInt(t.BillID, 10)
	fields["month"] = strconv.Itoa(t.Month)
	fields["year"] = strconv.Itoa(t.Year)
}
