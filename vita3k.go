package vita3k

// Address is a guest virtual address in the emulated Vita address space.
type Address uint32

// SceUID identifies a kernel object (thread, semaphore, port) on the guest.
// Negative values are error codes in the Sce ABI; valid UIDs are positive.
type SceUID int32

// Memory represents the guest address space
type Memory interface {
	Read(addr Address, length uint32) ([]byte, error)
	Write(addr Address, data []byte) error
	ReadU8(addr Address) (uint8, error)
	ReadU16(addr Address) (uint16, error)
	ReadU32(addr Address) (uint32, error)
	WriteU8(addr Address, value uint8) error
	WriteU16(addr Address, value uint16) error
	WriteU32(addr Address, value uint32) error
}
