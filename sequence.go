package displayio

import (
	"fmt"
	"time"
)

// Init sequence meta byte layout: bit 7 flags a trailing delay byte, bits
// 0-6 carry the parameter count.
const (
	sequenceDelayFlag = 0x80
	sequenceParamMask = 0x7f
)

// runSequence executes a bit-packed init sequence against the bus.
//
// Each record is a command byte, a meta byte, the declared number of
// parameter bytes, and — when the delay flag is set — one delay byte in
// milliseconds, slept before the next record. An empty sequence is a valid
// no-op. A sequence that ends mid-record fails with ErrTruncatedInit;
// commands sent before the truncation point are not undone.
func runSequence(bus Bus, sequence []byte) error {
	for i := 0; i < len(sequence); {
		if len(sequence)-i < 2 {
			return fmt.Errorf("%w: record header at offset %d", ErrTruncatedInit, i)
		}
		command := sequence[i]
		meta := sequence[i+1]
		i += 2

		n := int(meta & sequenceParamMask)
		if len(sequence)-i < n {
			return fmt.Errorf("%w: command %#02x wants %d parameter bytes, %d left",
				ErrTruncatedInit, command, n, len(sequence)-i)
		}
		params := sequence[i : i+n]
		i += n

		if err := bus.SendCommand(command, params); err != nil {
			return err
		}

		if meta&sequenceDelayFlag != 0 {
			if i >= len(sequence) {
				return fmt.Errorf("%w: command %#02x is missing its delay byte",
					ErrTruncatedInit, command)
			}
			time.Sleep(time.Duration(sequence[i]) * time.Millisecond)
			i++
		}
	}
	return nil
}
