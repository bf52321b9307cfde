package algorithms

import (
	"math"
	"testing"
	"time"
)

func TestNoDelay_Delay(t *testing.T) {
	law := NewDelayLaw(BackoffNoDelay, time.Second, 0, 2)

	for attempt := range 10 {
		if got := law.Delay(attempt); got != 0 {
			t.Errorf("Delay(%d) = %v, want 0", attempt, got)
		}
	}
}

func TestFixedBackoff_Delay(t *testing.T) {
	tests := []struct {
		name          string
		base          time.Duration
		attemptNumber int
		want          time.Duration
	}{
		{
			name:          "first attempt",
			base:          100 * time.Millisecond,
			attemptNumber: 0,
			want:          100 * time.Millisecond,
		},
		{
			name:          "later attempt is unchanged",
			base:          100 * time.Millisecond,
			attemptNumber: 7,
			want:          100 * time.Millisecond,
		},
		{
			name:          "negative attempt returns zero",
			base:          100 * time.Millisecond,
			attemptNumber: -1,
			want:          0,
		},
		{
			name:          "zero base",
			base:          0,
			attemptNumber: 3,
			want:          0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			law := newFixedBackoff(tt.base)
			if got := law.Delay(tt.attemptNumber); got != tt.want {
				t.Errorf("Delay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFibonacciBackoff_Sequence(t *testing.T) {
	d := 100 * time.Millisecond
	law := newFibonacciBackoff(d, unbounded)

	expectedDelays := []time.Duration{
		d,      // fib(0) = 1
		d,      // fib(1) = 1
		2 * d,  // fib(2) = 2
		3 * d,  // fib(3) = 3
		5 * d,  // fib(4) = 5
		8 * d,  // fib(5) = 8
		13 * d, // fib(6) = 13
	}

	for i, expected := range expectedDelays {
		if got := law.Delay(i); got != expected {
			t.Errorf("Delay(%d) = %v, want %v", i, got, expected)
		}
	}
}

func TestFibonacciBackoff_Delay(t *testing.T) {
	tests := []struct {
		name          string
		base          time.Duration
		ceiling       time.Duration
		attemptNumber int
		want          time.Duration
	}{
		{
			name:          "negative attempt returns zero",
			base:          time.Second,
			ceiling:       unbounded,
			attemptNumber: -1,
			want:          0,
		},
		{
			name:          "zero base",
			base:          0,
			ceiling:       unbounded,
			attemptNumber: 5,
			want:          0,
		},
		{
			name:          "respects ceiling",
			base:          time.Second,
			ceiling:       4 * time.Second,
			attemptNumber: 4,
			want:          4 * time.Second,
		},
		{
			name:          "ceiling below base",
			base:          time.Second,
			ceiling:       500 * time.Millisecond,
			attemptNumber: 0,
			want:          500 * time.Millisecond,
		},
		{
			name:          "overflow saturates",
			base:          time.Hour,
			ceiling:       unbounded,
			attemptNumber: 500,
			want:          unbounded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			law := newFibonacciBackoff(tt.base, tt.ceiling)
			if got := law.Delay(tt.attemptNumber); got != tt.want {
				t.Errorf("Delay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFibonacciBackoff_Idempotent(t *testing.T) {
	law := newFibonacciBackoff(time.Second, unbounded)

	first := law.Delay(6)
	law.Delay(2)
	law.Delay(9)

	if again := law.Delay(6); again != first {
		t.Errorf("Delay(6) changed between calls: %v then %v", first, again)
	}
}

func TestCalcExponentialDelay(t *testing.T) {
	tests := []struct {
		name          string
		attemptNumber int
		base          time.Duration
		factor        int64
		ceiling       time.Duration
		want          time.Duration
	}{
		{
			name:          "attempt 0 returns base delay",
			attemptNumber: 0,
			base:          100 * time.Millisecond,
			factor:        2,
			ceiling:       10 * time.Second,
			want:          100 * time.Millisecond,
		},
		{
			name:          "attempt 1 doubles base delay",
			attemptNumber: 1,
			base:          100 * time.Millisecond,
			factor:        2,
			ceiling:       10 * time.Second,
			want:          200 * time.Millisecond,
		},
		{
			name:          "factor 3",
			attemptNumber: 3,
			base:          10 * time.Millisecond,
			factor:        3,
			ceiling:       10 * time.Second,
			want:          270 * time.Millisecond,
		},
		{
			name:          "factor 1 stays flat",
			attemptNumber: 40,
			base:          10 * time.Millisecond,
			factor:        1,
			ceiling:       unbounded,
			want:          10 * time.Millisecond,
		},
		{
			name:          "negative attempt returns zero",
			attemptNumber: -1,
			base:          100 * time.Millisecond,
			factor:        2,
			ceiling:       10 * time.Second,
			want:          0,
		},
		{
			name:          "very large attempt returns ceiling",
			attemptNumber: 100,
			base:          100 * time.Millisecond,
			factor:        2,
			ceiling:       10 * time.Second,
			want:          10 * time.Second,
		},
		{
			name:          "maxShift boundary",
			attemptNumber: maxShift,
			base:          1 * time.Millisecond,
			factor:        2,
			ceiling:       1 * time.Hour,
			want:          1 * time.Hour,
		},
		{
			name:          "overflow protection without ceiling",
			attemptNumber: 50,
			base:          1 * time.Hour,
			factor:        2,
			ceiling:       unbounded,
			want:          unbounded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calcExponentialDelay(tt.attemptNumber, tt.base, tt.factor, tt.ceiling)
			if got != tt.want {
				t.Errorf("calcExponentialDelay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewDelayLaw_Defaults(t *testing.T) {
	tests := []struct {
		name        string
		backoffType BackoffType
		want        []time.Duration
	}{
		{"fibonacci", BackoffFibonacci, []time.Duration{time.Second, time.Second, 2 * time.Second, 3 * time.Second}},
		{"fixed", BackoffFixed, []time.Duration{time.Second, time.Second, time.Second, time.Second}},
		{"no delay", BackoffNoDelay, []time.Duration{0, 0, 0, 0}},
		{"exponential", BackoffExponential, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second}},
		{"unknown falls back to fibonacci", BackoffType(42), []time.Duration{time.Second, time.Second, 2 * time.Second, 3 * time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			law := NewDelayLaw(tt.backoffType, time.Second, 0, 2)
			for i, want := range tt.want {
				if got := law.Delay(i); got != want {
					t.Errorf("Delay(%d) = %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestJitter(t *testing.T) {
	t.Run("zero fraction is exact", func(t *testing.T) {
		rng := SeededRand(1, 0)
		if got := Jitter(time.Second, 0, rng); got != time.Second {
			t.Errorf("Jitter() = %v, want %v", got, time.Second)
		}
	})

	t.Run("nil rng is exact", func(t *testing.T) {
		if got := Jitter(time.Second, 0.5, nil); got != time.Second {
			t.Errorf("Jitter() = %v, want %v", got, time.Second)
		}
	})

	t.Run("zero delay stays zero", func(t *testing.T) {
		if got := Jitter(0, 0.9, SeededRand(1, 0)); got != 0 {
			t.Errorf("Jitter() = %v, want 0", got)
		}
	})

	t.Run("within bounds", func(t *testing.T) {
		for i := range 1000 {
			got := Jitter(time.Second, 0.3, SeededRand(7, i))
			if got < 700*time.Millisecond || got > 1300*time.Millisecond {
				t.Fatalf("Jitter() = %v outside [700ms, 1300ms]", got)
			}
		}
	})

	t.Run("produces variation", func(t *testing.T) {
		seen := make(map[time.Duration]bool)
		for i := range 100 {
			seen[Jitter(time.Second, 0.3, SeededRand(7, i))] = true
		}
		if len(seen) < 2 {
			t.Error("expected jitter to produce varying delays, but got uniform delays")
		}
	})

	t.Run("saturates instead of overflowing", func(t *testing.T) {
		for i := range 100 {
			got := Jitter(time.Duration(math.MaxInt64), 0.9, SeededRand(3, i))
			if got < 0 {
				t.Fatalf("Jitter() overflowed to %v", got)
			}
		}
	})
}

func TestSeededRand_Deterministic(t *testing.T) {
	a := Jitter(time.Second, 0.5, SeededRand(99, 4))
	b := Jitter(time.Second, 0.5, SeededRand(99, 4))
	if a != b {
		t.Errorf("same seed and index gave %v and %v", a, b)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name    string
		d       time.Duration
		ceiling time.Duration
		want    time.Duration
	}{
		{"below ceiling", time.Second, 2 * time.Second, time.Second},
		{"above ceiling", 3 * time.Second, 2 * time.Second, 2 * time.Second},
		{"no ceiling", time.Hour, 0, time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.d, tt.ceiling); got != tt.want {
				t.Errorf("Clamp() = %v, want %v", got, tt.want)
			}
		})
	}
}

func BenchmarkFibonacciBackoff(b *testing.B) {
	law := newFibonacciBackoff(100*time.Millisecond, 10*time.Second)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		law.Delay(i % 10)
	}
}

func BenchmarkCalcExponentialDelay(b *testing.B) {
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		calcExponentialDelay(i%10, 100*time.Millisecond, 2, 10*time.Second)
	}
}

func BenchmarkJitter(b *testing.B) {
	rng := SeededRand(1, 0)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		Jitter(time.Second, 0.3, rng)
	}
}
