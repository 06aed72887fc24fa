//go:build windows

package monotime

import (
	"syscall"
	"time"
	"unsafe"
)

var (
	queryPerformanceCounter *syscall.Proc
	counterFrequency        uint64
	counterStart            uint64
)

func init() {
	dll, err := syscall.LoadDLL("kernel32.dll")
	if err != nil {
		panic(err)
	}
	queryPerformanceCounter, err = dll.FindProc("QueryPerformanceCounter")
	if err != nil {
		panic(err)
	}

	// docs: https://docs.microsoft.com/en-us/windows/desktop/SysInfo/acquiring-high-resolution-time-stamps
	queryPerformanceFrequency, err := dll.FindProc("QueryPerformanceFrequency")
	if err != nil {
		panic(err)
	}
	if ret, _, err := queryPerformanceFrequency.Call(uintptr(unsafe.Pointer(&counterFrequency))); ret == 0 {
		panic(err)
	}
	counterStart = counter()
}

func counter() uint64 {
	var ctr uint64
	if ret, _, err := queryPerformanceCounter.Call(uintptr(unsafe.Pointer(&ctr))); ret == 0 {
		panic(err)
	}
	return ctr
}

func now() time.Duration {
	ticks := counter() - counterStart
	// split to avoid overflowing ticks*1e9 on long running processes
	seconds := ticks / counterFrequency
	remainder := ticks % counterFrequency
	return time.Duration(seconds)*time.Second + time.Duration(remainder*1e9/counterFrequency)
}
