package protocol

import (
	"bytes"
	"errors"
	"testing"
)

func TestVLQWireFormat(t *testing.T) {
	testCases := []struct {
		v    int32
		wire []byte
	}{
		{0, []byte{0x00}},
		{95, []byte{0x5F}},
		{96, []byte{0x80, 0x60}},
		{-1, []byte{0x7F}},
		{-32, []byte{0x60}},
		{-33, []byte{0xFF, 0x5F}},
		{1000, []byte{0x87, 0x68}},
		{-1 << 31, []byte{0xF8, 0x80, 0x80, 0x80, 0x00}},
	}

	for _, tc := range testCases {
		out := NewScratchOutput()
		EncodeVLQInt(out, tc.v)
		if !bytes.Equal(out.Result(), tc.wire) {
			t.Errorf("Encode %d: expected %x, got %x", tc.v, tc.wire, out.Result())
		}

		data := append([]byte(nil), tc.wire...)
		got, err := DecodeVLQInt(&data)
		if err != nil || got != tc.v || len(data) != 0 {
			t.Errorf("Decode %x: got %d, %v, %d bytes left", tc.wire, got, err, len(data))
		}
	}
}

func TestVLQAddresses(t *testing.T) {
	for _, addr := range []uint32{0x40012C3C, 0x58000048, 0xE0042000, 0xFFFFFFFF} {
		out := NewScratchOutput()
		EncodeVLQUint(out, addr)
		data := out.Result()
		got, err := DecodeVLQUint(&data)
		if err != nil || got != addr {
			t.Errorf("Address 0x%08x decoded as 0x%08x (%v)", addr, got, err)
		}
	}
}

func TestVLQStrings(t *testing.T) {
	out := NewScratchOutput()
	EncodeVLQString(out, "CCR3")
	EncodeVLQBytes(out, []byte{32, 40, 47})
	data := out.Result()

	s, err := DecodeVLQString(&data)
	if err != nil || s != "CCR3" {
		t.Errorf("Expected CCR3, got %q (%v)", s, err)
	}
	b, err := DecodeVLQBytes(&data)
	if err != nil || !bytes.Equal(b, []byte{32, 40, 47}) {
		t.Errorf("Expected [32 40 47], got %v (%v)", b, err)
	}
}

func TestVLQErrors(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrBufferTooSmall},
		{"dangling continuation", []byte{0x80}, ErrBufferTooSmall},
		{"too long", []byte{0x81, 0x81, 0x81, 0x81, 0x81, 0x01}, ErrInvalidVLQ},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data := tc.data
			if _, err := DecodeVLQInt(&data); !errors.Is(err, tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
		})
	}

	data := []byte{5, 'a'}
	if _, err := DecodeVLQString(&data); !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("Short string: expected ErrBufferTooSmall, got %v", err)
	}
}
