package capacitor_test

import (
	"reflect"
	"testing"

	"github.com/joeydtaylor/filament/pkg/internal/capacitor"
	"github.com/joeydtaylor/filament/pkg/internal/sensor"
	"github.com/joeydtaylor/filament/pkg/internal/types"
)

func TestEnqueueOverflowEvictsOldest(t *testing.T) {
	c := capacitor.NewCapacitor[int](capacitor.WithCapacity[int](3))

	for i := 1; i <= 5; i++ {
		c.Enqueue(i)
	}

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	got := c.DequeueAll()
	if !reflect.DeepEqual(got, []int{3, 4, 5}) {
		t.Fatalf("DequeueAll() = %v, want [3 4 5]", got)
	}
}

func TestEnqueueAllEvictsOnlyWhatIsNeeded(t *testing.T) {
	c := capacitor.NewCapacitor[int](capacitor.WithCapacity[int](4))
	c.EnqueueAll([]int{1, 2, 3})
	c.EnqueueAll([]int{4, 5})

	got := c.DequeueAll()
	if !reflect.DeepEqual(got, []int{2, 3, 4, 5}) {
		t.Fatalf("DequeueAll() = %v, want [2 3 4 5]", got)
	}
}

func TestEnqueueAllOversizedBatchKeepsNewestTail(t *testing.T) {
	c := capacitor.NewCapacitor[int](capacitor.WithCapacity[int](2))
	c.Enqueue(0)
	c.EnqueueAll([]int{1, 2, 3, 4})

	got := c.DequeueAll()
	if !reflect.DeepEqual(got, []int{3, 4}) {
		t.Fatalf("DequeueAll() = %v, want [3 4]", got)
	}
}

func TestDequeueAllClears(t *testing.T) {
	c := capacitor.NewCapacitor[string]()
	c.Enqueue("a")
	c.Enqueue("b")

	first := c.DequeueAll()
	if !reflect.DeepEqual(first, []string{"a", "b"}) {
		t.Fatalf("DequeueAll() = %v, want [a b]", first)
	}
	if c.Len() != 0 {
		t.Fatalf("Len() after drain = %d, want 0", c.Len())
	}
	if second := c.DequeueAll(); second != nil {
		t.Fatalf("second DequeueAll() = %v, want nil", second)
	}
}

func TestEvictionNotifiesSensor(t *testing.T) {
	evicted := 0
	s := sensor.NewSensor()
	s.RegisterOnCapacitorEvict(func(_ types.ComponentMetadata, n int) {
		evicted += n
	})

	c := capacitor.NewCapacitor[int](
		capacitor.WithCapacity[int](2),
		capacitor.WithSensor[int](s),
	)
	for i := 0; i < 5; i++ {
		c.Enqueue(i)
	}

	if evicted != 3 {
		t.Fatalf("sensor observed %d evictions, want 3", evicted)
	}
}
