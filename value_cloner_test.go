package ttlcache_test

import (
	"testing"

	ttlcache "github.com/karupanerura/ttl-cache"
)

type TestClonerStruct struct {
	Value int
}

func (s *TestClonerStruct) Clone() *TestClonerStruct {
	return &TestClonerStruct{
		Value: s.Value,
	}
}

type TestDeepCopyerStruct struct {
	Value int
}

func (s *TestDeepCopyerStruct) DeepCopy() *TestDeepCopyerStruct {
	return &TestDeepCopyerStruct{
		Value: s.Value,
	}
}

func TestDefaultClonerWithCloneMethod(t *testing.T) {
	t.Parallel()

	cloner := ttlcache.DefaultValueCloner[*TestClonerStruct]()
	original := &TestClonerStruct{Value: 42}
	cloned := cloner.CloneValue(original)

	if original == cloned {
		t.Error("Expected different pointer, got same pointer")
	}
	original.Value = 100
	if cloned.Value != 42 {
		t.Errorf("Expected cloned value to remain unchanged, got %d", cloned.Value)
	}
}

func TestDefaultClonerWithDeepCopyMethod(t *testing.T) {
	t.Parallel()

	cloner := ttlcache.DefaultValueCloner[*TestDeepCopyerStruct]()
	original := &TestDeepCopyerStruct{Value: 42}
	cloned := cloner.CloneValue(original)

	if original == cloned {
		t.Error("Expected different pointer, got same pointer")
	}
	original.Value = 100
	if cloned.Value != 42 {
		t.Errorf("Expected cloned value to remain unchanged, got %d", cloned.Value)
	}
}

func TestDefaultClonerWithNoSpecialMethod(t *testing.T) {
	t.Parallel()

	type SimpleStruct struct {
		Value int
	}

	for name, f := range map[string]func(){
		"pointer":   func() { ttlcache.DefaultValueCloner[*SimpleStruct]() },
		"map":       func() { ttlcache.DefaultValueCloner[map[string]int]() },
		"interface": func() { ttlcache.DefaultValueCloner[any]() },
	} {
		f := f
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			defer func() {
				if r := recover(); r == nil {
					t.Error("Expected panic for type with no special methods, but did not panic")
				}
			}()
			f()
		})
	}
}

func TestDefaultClonerImplementation(t *testing.T) {
	t.Parallel()

	if _, ok := ttlcache.DefaultValueCloner[*TestClonerStruct]().(ttlcache.ValueClonerFunc[*TestClonerStruct]); !ok {
		t.Error("Expected ValueClonerFunc for type with Clone method")
	}
	if _, ok := ttlcache.DefaultValueCloner[*TestDeepCopyerStruct]().(ttlcache.ValueClonerFunc[*TestDeepCopyerStruct]); !ok {
		t.Error("Expected ValueClonerFunc for type with DeepCopy method")
	}
	if _, ok := ttlcache.DefaultValueCloner[string]().(ttlcache.NopValueCloner[string]); !ok {
		t.Error("Expected NopValueCloner for string")
	}
	if _, ok := ttlcache.DefaultValueCloner[int]().(ttlcache.NopValueCloner[int]); !ok {
		t.Error("Expected NopValueCloner for int")
	}
}
