package scaffold

// reverseString returns s reversed. Overhang sequences are plain ASCII so
// byte reversal is safe.
func reverseString(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

var complementTable = [256]byte{}

func init() {
	for i := range complementTable {
		complementTable[i] = 'N'
	}
	for _, p := range [][2]byte{{'A', 'T'}, {'C', 'G'}, {'G', 'C'}, {'T', 'A'}} {
		complementTable[p[0]] = p[1]
		complementTable[p[0]+'a'-'A'] = p[1]
	}
}

// ReverseComplement returns the reverse complement of seq. Characters
// outside {A,C,G,T} complement to N.
func ReverseComplement(seq string) string {
	b := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		b[len(seq)-1-i] = complementTable[seq[i]]
	}
	return string(b)
}
