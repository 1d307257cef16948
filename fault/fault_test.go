package fault_test

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/pdk/whilst/fault"
)

func TestKindOfWrapped(t *testing.T) {

	err := errors.Wrapf(fault.Evalf("undefined identifier %s", "y"), "line %d", 4)

	if fault.KindOf(err) != fault.Eval {
		t.Errorf("expected eval kind, got %s", fault.KindOf(err))
	}
	if !fault.Is(err, fault.Eval) {
		t.Errorf("expected Is(err, Eval)")
	}
	if fault.Is(err, fault.Syntax) {
		t.Errorf("did not expect Is(err, Syntax)")
	}

	want := "line 4: eval error: undefined identifier y"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestKindOfForeign(t *testing.T) {

	if fault.KindOf(errors.New("boom")) != fault.Unknown {
		t.Errorf("foreign errors should be Unknown")
	}
	if fault.Is(nil, fault.Unknown) {
		t.Errorf("nil is never a fault")
	}
}
