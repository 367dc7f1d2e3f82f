package identicon

import "crypto/md5"

// Digest is the fixed length hash an input string is reduced to. Every value
// derived during the generation process (the fill color, the cell grid) is
// obtained from this digest alone, which is what makes the generated avatars
// deterministic. MD5 is used for its uniformly distributed, fixed size output
// and not for any cryptographic property.
type Digest [md5.Size]byte

// Sum hashes the input string into a Digest.
// It accepts any string, the empty one included, and never fails.
func Sum(input string) Digest {
	return md5.Sum([]byte(input))
}
