package loom

import "testing"

func TestFutureWaitReturnsValue(t *testing.T) {
	ex := NewExecutor(2)
	var fut *Future[int]
	ex.Scope(func(scope *Scope) {
		fut = SpawnWithResult(scope, func() int { return 42 })
	})
	v, err := fut.Wait()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 42 {
		t.Errorf("value = %d, want 42", v)
	}
}

func TestFutureWaitPropagatesPanic(t *testing.T) {
	ex := NewExecutor(2)
	var fut *Future[int]
	ex.Scope(func(scope *Scope) {
		fut = SpawnWithResult(scope, func() int { panic("boom") })
	})
	_, err := fut.Wait()
	if err == nil {
		t.Fatal("expected the recovered panic to surface as an error")
	}
	var taskErr *TaskError
	if te, ok := err.(*TaskError); !ok {
		t.Fatalf("error type = %T, want *TaskError", err)
	} else {
		taskErr = te
	}
	if taskErr.Recovered != "boom" {
		t.Errorf("recovered = %v, want %q", taskErr.Recovered, "boom")
	}
}

func TestScopeBlocksUntilAllTasksComplete(t *testing.T) {
	ex := NewExecutor(4)
	results := make([]int, 10)
	ex.Scope(func(scope *Scope) {
		for i := range results {
			i := i
			SpawnWithResult(scope, func() int {
				results[i] = i * i
				return i
			})
		}
	})
	for i, v := range results {
		if v != i*i {
			t.Errorf("results[%d] = %d, want %d", i, v, i*i)
		}
	}
}
