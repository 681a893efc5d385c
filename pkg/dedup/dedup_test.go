package dedup

import (
	"fmt"
	"testing"
)

func TestFilterTestAndAdd(t *testing.T) {
	f := NewFilter(1000, 0.01)

	if f.TestAndAdd([]byte("example.com")) {
		t.Error("first TestAndAdd returned true, want false")
	}
	if !f.TestAndAdd([]byte("example.com")) {
		t.Error("second TestAndAdd returned false, want true")
	}
	if f.Test([]byte("absent.org")) {
		t.Error("Test on absent value returned true")
	}
}

func TestFilterApproxCount(t *testing.T) {
	f := NewFilter(10000, 0.01)

	const n = 500
	for i := 0; i < n; i++ {
		f.TestAndAdd([]byte(fmt.Sprintf("domain-%d.com", i)))
	}

	count := f.ApproxCount()
	// The estimate should be within 10% of the true cardinality
	if count < n*9/10 || count > n*11/10 {
		t.Errorf("ApproxCount = %d, want roughly %d", count, n)
	}
}
