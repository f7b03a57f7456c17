package irprotocol // import "github.com/manutenfruits/esp8266-ac-controller/irremote/irprotocol"

// ReverseBits reverses the bit order of b, so bit 0 becomes bit 7 and so on.
func ReverseBits(b byte) byte {
	b = (b>>1)&0x55 | (b<<1)&0xaa // swap adjacent bits
	b = (b>>2)&0x33 | (b<<2)&0xcc // swap pairs
	b = (b>>4)&0x0f | (b<<4)&0xf0 // swap nibbles
	return b
}
