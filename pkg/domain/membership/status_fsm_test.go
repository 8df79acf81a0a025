package membership

import "testing"

func TestStatusMachineTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		event   string
		want    Status
		wantErr bool
	}{
		{"suspend active", StatusActive, EventSuspend, StatusSuspended, false},
		{"cancel active", StatusActive, EventCancel, StatusCancelled, false},
		{"reactivate suspended", StatusSuspended, EventReactivate, StatusActive, false},
		{"reactivate cancelled", StatusCancelled, EventReactivate, StatusActive, false},
		{"suspend suspended", StatusSuspended, EventSuspend, StatusSuspended, true},
		{"cancel cancelled", StatusCancelled, EventCancel, StatusCancelled, true},
		{"cancel suspended", StatusSuspended, EventCancel, StatusSuspended, true},
		{"reactivate active", StatusActive, EventReactivate, StatusActive, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewStatusMachine(tt.from, "C1")
			if err != nil {
				t.Fatalf("NewStatusMachine failed: %v", err)
			}

			err = m.Transition(tt.event)
			if tt.wantErr && err == nil {
				t.Fatal("expected transition error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := m.Current(); got != tt.want {
				t.Errorf("expected status %s, got %s", tt.want, got)
			}
		})
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{StatusActive, StatusSuspended, StatusCancelled} {
		if !s.IsValid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if Status("frozen").IsValid() {
		t.Error("expected unknown status to be invalid")
	}
}
