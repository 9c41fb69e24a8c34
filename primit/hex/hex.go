// Package hex implements a small hexadecimal codec over fixed caller-owned
// buffers, in the style the rest of the module uses for byte conversion
// (no implicit allocation, explicit length checks up front).
package hex

import "github.com/go-primit/primit/primit/errors"

const hexTable = "0123456789abcdef"

// reverseHexTable maps an ASCII byte to its hex nibble value, or 0xff if
// the byte is not a hex digit in either case.
var reverseHexTable = buildReverseHexTable()

func buildReverseHexTable() [256]byte {
	var table [256]byte
	for i := range table {
		table[i] = 0xff
	}
	for i := 0; i < 10; i++ {
		table['0'+i] = byte(i)
	}
	for i := 0; i < 6; i++ {
		table['a'+i] = byte(10 + i)
		table['A'+i] = byte(10 + i)
	}
	return table
}

// Encode writes the lowercase hex encoding of input into output, which
// must be at least 2*len(input) bytes.
func Encode(output, input []byte) error {
	if len(input)*2 > len(output) {
		return errors.ErrInvalidHexLength
	}
	for i, b := range input {
		output[i*2] = hexTable[b>>4]
		output[i*2+1] = hexTable[b&0xf]
	}
	return nil
}

// Decode writes the bytes input (an even-length hex string) decodes to
// into output, which must be at least len(input)/2 bytes.
func Decode(output, input []byte) error {
	if len(input)%2 != 0 {
		return errors.ErrInvalidHexLength
	}
	if len(input) > len(output)*2 {
		return errors.ErrInvalidHexLength
	}
	for i := 0; i < len(input); i += 2 {
		hi := reverseHexTable[input[i]]
		lo := reverseHexTable[input[i+1]]
		if hi|lo == 0xff {
			return errors.ErrInvalidHexCharacter
		}
		output[i/2] = hi<<4 | lo
	}
	return nil
}

// EncodeToString returns the lowercase hex encoding of input.
func EncodeToString(input []byte) string {
	out := make([]byte, len(input)*2)
	_ = Encode(out, input)
	return string(out)
}

// DecodeString decodes an even-length hex string.
func DecodeString(input string) ([]byte, error) {
	out := make([]byte, len(input)/2)
	if err := Decode(out, []byte(input)); err != nil {
		return nil, err
	}
	return out, nil
}
