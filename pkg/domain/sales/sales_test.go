package sales

import (
	"math"
	"testing"
)

func TestNewEntry(t *testing.T) {
	e := NewEntry(TypeProduct, "C1", "Coffee x2", 3.80)

	if e.ID == "" {
		t.Error("expected a generated id")
	}
	if e.Timestamp.IsZero() {
		t.Error("expected a timestamp")
	}
	if e.Type != TypeProduct || e.ClientID != "C1" || e.Amount != 3.80 {
		t.Errorf("unexpected entry %+v", e)
	}
}

func TestTypeIsValid(t *testing.T) {
	for _, typ := range []Type{TypeProduct, TypeMembershipRenewal, TypeMembershipCancellation, TypeRenewalPayment} {
		if !typ.IsValid() {
			t.Errorf("expected %s to be valid", typ)
		}
	}
	if Type("propina").IsValid() {
		t.Error("expected unknown type to be invalid")
	}
}

func TestTotalsByType(t *testing.T) {
	entries := []Entry{
		{Type: TypeProduct, Amount: 3.80},
		{Type: TypeProduct, Amount: 1.00},
		{Type: TypeMembershipRenewal, Amount: 200},
		{Type: TypeRenewalPayment, Amount: 50},
	}

	total, byType := TotalsByType(entries)
	if math.Abs(total-254.80) > 1e-9 {
		t.Errorf("expected total 254.80, got %.2f", total)
	}
	if math.Abs(byType[TypeProduct]-4.80) > 1e-9 {
		t.Errorf("expected product total 4.80, got %.2f", byType[TypeProduct])
	}
	if byType[TypeMembershipCancellation] != 0 {
		t.Error("expected zero for absent type")
	}
}

func TestTotalsByTypeEmpty(t *testing.T) {
	total, byType := TotalsByType(nil)
	if total != 0 {
		t.Errorf("expected zero total, got %.2f", total)
	}
	if len(byType) != 0 {
		t.Errorf("expected empty map, got %v", byType)
	}
}
