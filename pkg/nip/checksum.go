package nip

// Weights applied to the first nine digits of a NIP.
var Weights = [9]int{6, 5, 7, 2, 3, 4, 5, 6, 7}

// Length is the number of digits in a NIP.
const Length = 10

// Digits returns every decimal digit of s in order, skipping letters,
// separators and anything else.
func Digits(s string) []int {
	digits := make([]int, 0, Length)
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			digits = append(digits, int(c-'0'))
		}
	}
	return digits
}

// CheckDigit computes the weighted sum of the first nine digits modulo 11.
// The second result is false when fewer than nine digits are given or the
// remainder is 10, which no single check digit can match.
func CheckDigit(digits []int) (int, bool) {
	if len(digits) < len(Weights) {
		return 0, false
	}

	sum := 0
	for i, w := range Weights {
		sum += w * digits[i]
	}

	rem := sum % 11
	return rem, rem < 10
}

// ValidChecksum reports whether the tenth digit of s matches the check digit
// derived from the first nine. Values with fewer than ten digits fail.
// Digits past the tenth are ignored.
func ValidChecksum(s string) bool {
	digits := Digits(s)
	if len(digits) < Length {
		return false
	}

	want, ok := CheckDigit(digits)
	return ok && want == digits[Length-1]
}
