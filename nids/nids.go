// Package nids maps numeric import identifiers (NIDs) to their symbolic
// names. A NID is a stable, opaque 32-bit key identifying one importable
// routine of the platform ABI. The table is generated from the ABI
// definition, built once at package initialization and immutable afterward.
package nids

// Entry pairs a NID with the routine's symbolic name.
type Entry struct {
	Name string
	NID  uint32
}

// Entries lists every NID known to the emulator, one entry per importable
// routine. Keep this sorted by name for maintainability; lookup goes
// through the map built in init.
var Entries = []Entry{
	{"sceAudioOutGetRestSample", 0x677424D6},
	{"sceAudioOutOpenPort", 0x5BC341E4},
	{"sceAudioOutOutput", 0x02DB3F5F},
	{"sceAudioOutReleasePort", 0x69E2E6B5},
	{"sceAudioOutSetConfig", 0xB8BA0D07},
	{"sceCtrlPeekBufferPositive", 0xA9C3CED6},
	{"sceCtrlReadBufferPositive", 0x67E7AB83},
	{"sceCtrlSetSamplingMode", 0xA6107F09},
	{"sceDisplayGetRefreshRate", 0xA08CA60D},
	{"sceDisplayGetVcount", 0xB6FDE0BA},
	{"sceDisplaySetFrameBuf", 0x7A410B64},
	{"sceDisplayWaitVblankStart", 0x5795E898},
	{"sceGxmBeginScene", 0x8734FF4E},
	{"sceGxmDisplayQueueAddEntry", 0xEC5C26B5},
	{"sceGxmEndScene", 0xFE300E2F},
	{"sceGxmInitialize", 0xB0F1E4EC},
	{"sceGxmTerminate", 0xB627DE66},
	{"sceIoClose", 0xC70B8886},
	{"sceIoLseek", 0x99BA173E},
	{"sceIoOpen", 0x6C60AC61},
	{"sceIoRead", 0xFDB32293},
	{"sceIoWrite", 0x34EFD876},
	{"sceKernelCreateMutex", 0x1D8D7945},
	{"sceKernelCreateSema", 0xC08F5BC5},
	{"sceKernelCreateThread", 0xC5C11EE7},
	{"sceKernelDelayThread", 0x4B675D05},
	{"sceKernelDeleteMutex", 0xCB78710D},
	{"sceKernelDeleteSema", 0x1D1A9EA6},
	{"sceKernelDeleteThread", 0xDDE8C207},
	{"sceKernelExitDeleteThread", 0x1D17DECF},
	{"sceKernelExitProcess", 0x7595D9AA},
	{"sceKernelExitThread", 0x0C8A38E1},
	{"sceKernelGetProcessTimeWide", 0xAC0F692B},
	{"sceKernelGetThreadId", 0x0FB972F9},
	{"sceKernelLockMutex", 0x68D10E25},
	{"sceKernelSignalSema", 0xE0431E9D},
	{"sceKernelStartThread", 0xF08DE149},
	{"sceKernelUnlockMutex", 0x1E1B04C4},
	{"sceKernelWaitSema", 0x02D2CA32},
	{"sceKernelWaitThreadEnd", 0xDDB395A9},
	{"sceRtcGetCurrentTick", 0x1BA763CA},
	{"sceTouchPeek", 0xFF082DF0},
	{"sceTouchRead", 0x169A1D58},
}

var names map[uint32]string

func init() {
	names = make(map[uint32]string, len(Entries))
	for _, e := range Entries {
		names[e.NID] = e.Name
	}
}

// Name returns the symbolic name for nid, or "" when the NID is not part of
// the known ABI surface. Unknown NIDs are not an error; titles import
// routines the emulator has never catalogued.
func Name(nid uint32) string {
	return names[nid]
}
