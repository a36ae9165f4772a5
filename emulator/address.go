package emulator

// LogicalAddress is an address inside the console's virtual memory.
type LogicalAddress uint32

// PhysicalOffset is the matching offset inside the emulator process.
type PhysicalOffset uint64

const (
	LogicalBase  = 0x80000000
	PhysicalBase = 0x7FFF0000
)

// Translate converts a console address to a host offset. Addresses below
// LogicalBase are outside console RAM and must not be passed in.
func Translate(addr LogicalAddress) PhysicalOffset {
	return PhysicalOffset(uint64(addr) - LogicalBase + PhysicalBase)
}
