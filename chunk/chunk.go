package chunk

import "bytes"

// Chunk is a half-open byte range of the input assigned to one worker. Every
// interior boundary sits immediately after a newline, so no record is ever
// split across two chunks and workers need no coordination.
type Chunk struct {
	Start int
	End   int
}

// Plan cuts data into at most parallelism record-aligned ranges. Boundaries
// start at the ideal equal-width offsets and move forward past the next
// newline; ranges that collapse to nothing are dropped, so short inputs
// yield fewer chunks than requested. The returned chunks are disjoint,
// contiguous and cover all of data.
func Plan(data []byte, parallelism int) []Chunk {
	if len(data) == 0 {
		return nil
	}
	if parallelism < 1 {
		parallelism = 1
	}

	chunks := make([]Chunk, 0, parallelism)
	start := 0
	for i := 1; i <= parallelism; i++ {
		end := len(data)
		if i < parallelism {
			end = snap(data, len(data)*i/parallelism)
		}
		if end > start {
			chunks = append(chunks, Chunk{Start: start, End: end})
			start = end
		}
	}
	return chunks
}

// snap moves an ideal boundary forward to just past the next newline.
// End-of-data counts as a boundary when the final record has no newline.
func snap(data []byte, pos int) int {
	nl := bytes.IndexByte(data[pos:], '\n')
	if nl < 0 {
		return len(data)
	}
	return pos + nl + 1
}
