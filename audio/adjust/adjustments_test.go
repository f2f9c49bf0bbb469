package adjust

import "testing"

func TestAdjustmentsAggregate(t *testing.T) {
	a := NewAdjustments()

	if a.Aggregate(Frequency) != 1 || a.Aggregate(Balance) != 0 {
		t.Fatal("empty aggregates must be neutral")
	}

	a.AddAdjustment(Frequency, Constant(1.5))
	a.AddAdjustment(Frequency, Constant(2))
	a.AddAdjustment(Volume, Constant(0.5))
	a.AddAdjustment(Balance, Constant(0.75))
	a.AddAdjustment(Balance, Constant(0.75))
	a.AddAdjustment(Balance, Constant(0.5))

	if got := a.Aggregate(Frequency); got != 3 {
		t.Fatalf("frequency = %v, want 3", got)
	}
	if got := a.Aggregate(Volume); got != 0.5 {
		t.Fatalf("volume = %v, want 0.5", got)
	}
	// Constant(0.75) was registered twice; the duplicate is ignored.
	if got := a.Aggregate(Balance); got != 1 {
		t.Fatalf("balance = %v, want clamped 1", got)
	}
	if a.Count(Balance) != 2 {
		t.Fatalf("balance count = %d, want 2", a.Count(Balance))
	}
}

func TestAdjustmentsLiveSource(t *testing.T) {
	a := NewAdjustments()
	b := NewBindable(1)
	a.AddAdjustment(Tempo, b)

	var events []Property
	a.OnChange(func(p Property) { events = append(events, p) })

	b.Set(1.25)

	if got := a.Aggregate(Tempo); got != 1.25 {
		t.Fatalf("tempo = %v, want 1.25", got)
	}
	if len(events) != 1 || events[0] != Tempo {
		t.Fatalf("events = %v, want [tempo]", events)
	}

	a.RemoveAdjustment(Tempo, b)
	b.Set(3)

	if got := a.Aggregate(Tempo); got != 1 {
		t.Fatalf("tempo after removal = %v, want 1", got)
	}
	if len(events) != 2 {
		t.Fatalf("events = %v, want removal event only", events)
	}
}

func TestAdjustmentsRatesUseCellSnapshot(t *testing.T) {
	a := NewAdjustments()
	c := NewPairCell(Pair{Frequency: 2, Tempo: 0.5})

	a.AddAdjustment(Frequency, c.Frequency())
	a.AddAdjustment(Tempo, c.Tempo())
	a.AddAdjustment(Frequency, Constant(1.5))

	got := a.Rates()
	if got.Frequency != 3 || got.Tempo != 0.5 {
		t.Fatalf("Rates() = %+v, want {3 0.5}", got)
	}
	if a.Rate() != 1.5 {
		t.Fatalf("Rate() = %v, want 1.5", a.Rate())
	}
}

func TestAdjustmentsRemoveAllCancelsSubscriptions(t *testing.T) {
	a := NewAdjustments()
	c := NewPairCell(Identity)

	a.AddAdjustment(Frequency, c.Frequency())
	a.AddAdjustment(Tempo, c.Tempo())

	if c.Subscribers() != 2 {
		t.Fatalf("subscribers = %d, want 2", c.Subscribers())
	}

	a.RemoveAll()

	if c.Subscribers() != 0 {
		t.Fatalf("subscribers after RemoveAll = %d, want 0", c.Subscribers())
	}
	if a.Count(Frequency) != 0 || a.Count(Tempo) != 0 {
		t.Fatal("RemoveAll left bindings behind")
	}
}

func TestAdjustmentsIgnoreNilSource(t *testing.T) {
	var a Adjustments
	a.AddAdjustment(Volume, nil)

	if a.Count(Volume) != 0 {
		t.Fatal("nil source was registered")
	}
}
