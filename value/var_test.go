package value

import (
	"errors"
	"testing"
	"time"
)

func TestVarKinds(t *testing.T) {
	arr := NewArray()
	obj := NewObject(false)
	tests := []struct {
		name string
		v    Var
		kind Kind
	}{
		{"zero value", Var{}, KindNull},
		{"null", Null(), KindNull},
		{"bool", FromBool(true), KindBool},
		{"int", FromInt(1), KindInt},
		{"uint", FromUint(1), KindUint},
		{"float", FromFloat(1), KindFloat},
		{"string", FromString("s"), KindString},
		{"array", FromArray(arr), KindArray},
		{"object", FromObject(obj), KindObject},
		{"nil array handle", FromArray(nil), KindNull},
		{"nil object handle", FromObject(nil), KindNull},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Kind(); got != tt.kind {
				t.Errorf("Kind = %s, want %s", got, tt.kind)
			}
			if got := tt.v.IsEmpty(); got != (tt.kind == KindNull) {
				t.Errorf("IsEmpty = %v", got)
			}
		})
	}
}

func TestVarPredicates(t *testing.T) {
	tests := []struct {
		name                                 string
		v                                    Var
		isInt, isSigned, isNumeric, isString bool
	}{
		{"int", FromInt(-1), true, true, true, false},
		{"uint", FromUint(1), true, false, true, false},
		{"float", FromFloat(1.5), false, false, true, false},
		{"string", FromString("x"), false, false, false, true},
		{"bool", FromBool(true), false, false, false, false},
		{"null", Null(), false, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsInteger(); got != tt.isInt {
				t.Errorf("IsInteger = %v, want %v", got, tt.isInt)
			}
			if got := tt.v.IsSigned(); got != tt.isSigned {
				t.Errorf("IsSigned = %v, want %v", got, tt.isSigned)
			}
			if got := tt.v.IsNumeric(); got != tt.isNumeric {
				t.Errorf("IsNumeric = %v, want %v", got, tt.isNumeric)
			}
			if got := tt.v.IsString(); got != tt.isString {
				t.Errorf("IsString = %v, want %v", got, tt.isString)
			}
		})
	}
}

func TestVarBool(t *testing.T) {
	emptyObj := NewObject(false)
	fullObj := NewObject(false)
	fullObj.Set("k", FromInt(1))
	fullArr := NewArray()
	fullArr.Add(FromInt(1))

	tests := []struct {
		name    string
		v       Var
		want    bool
		wantErr bool
	}{
		{"true", FromBool(true), true, false},
		{"nonzero int", FromInt(-2), true, false},
		{"zero uint", FromUint(0), false, false},
		{"nonzero float", FromFloat(0.5), true, false},
		{"string true", FromString("true"), true, false},
		{"string junk", FromString("junk"), false, true},
		{"empty object", FromObject(emptyObj), false, false},
		{"nonempty object", FromObject(fullObj), true, false},
		{"nonempty array", FromArray(fullArr), true, false},
		{"null", Null(), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.Bool()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Bool() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Bool() = %v, want %v", got, tt.want)
			}
			if err != nil && !errors.Is(err, ErrBadConversion) {
				t.Errorf("error %v is not ErrBadConversion", err)
			}
		})
	}
}

func TestVarInt64(t *testing.T) {
	tests := []struct {
		name    string
		v       Var
		want    int64
		wantErr bool
	}{
		{"int", FromInt(-5), -5, false},
		{"uint in range", FromUint(5), 5, false},
		{"uint overflow", FromUint(1 << 63), 0, true},
		{"float truncates", FromFloat(3.9), 3, false},
		{"bool", FromBool(true), 1, false},
		{"numeric string", FromString("-12"), -12, false},
		{"bad string", FromString("12x"), 0, true},
		{"object", FromObject(NewObject(false)), 0, true},
		{"null", Null(), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.Int64()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Int64() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Int64() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestVarUint64(t *testing.T) {
	if _, err := FromInt(-1).Uint64(); !errors.Is(err, ErrBadConversion) {
		t.Errorf("negative int to uint64 error = %v", err)
	}
	if got, err := FromString("7").Uint64(); err != nil || got != 7 {
		t.Errorf("string to uint64 = %d, %v", got, err)
	}
}

func TestVarText(t *testing.T) {
	obj := NewObject(false)
	obj.Set("a", FromInt(1))

	tests := []struct {
		name    string
		v       Var
		want    string
		wantErr bool
	}{
		{"string", FromString("x"), "x", false},
		{"bool", FromBool(false), "false", false},
		{"int", FromInt(3), "3", false},
		{"float", FromFloat(2.5), "2.5", false},
		{"object renders pretty", FromObject(obj), "{\n  \"a\" : 1\n}", false},
		{"null", Null(), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.Text()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Text() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVarTime(t *testing.T) {
	ts := "2024-06-01T10:30:00Z"
	got, err := FromString(ts).Time()
	if err != nil {
		t.Fatalf("Time() error = %v", err)
	}
	want, _ := time.Parse(time.RFC3339, ts)
	if !got.Equal(want) {
		t.Errorf("Time() = %v, want %v", got, want)
	}

	if _, err := FromObject(NewObject(false)).Time(); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("object to time error = %v, want ErrNotImplemented", err)
	}
	if _, err := FromInt(1).Time(); !errors.Is(err, ErrBadConversion) {
		t.Errorf("int to time error = %v, want ErrBadConversion", err)
	}
}

func TestVarCopySharesHandles(t *testing.T) {
	obj := NewObject(false)
	v := FromObject(obj)
	w := v
	w.Object().Set("k", FromInt(1))
	if got := v.Object().Size(); got != 1 {
		t.Errorf("copied Var does not share object handle, size = %d", got)
	}
}
