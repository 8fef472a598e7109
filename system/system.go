// Package system answers questions about the operating system the program
// is running on.
package system

import "runtime"

// IsWindowsOS reports whether the current OS is Windows.
func IsWindowsOS() bool {
	return runtime.GOOS == "windows"
}

// SevenZipCommand returns the 7-Zip executable to invoke: the default install
// location on Windows and "7z" from PATH everywhere else.
func SevenZipCommand() string {
	if IsWindowsOS() {
		return `C:\Program Files\7-Zip\7z.exe`
	}
	return "7z"
}
