package models

import "fmt"

// OSFamily identifies an operating system line.
type OSFamily string

const (
	OSWindowsXP    OSFamily = "windows_xp"
	OSWindowsVista OSFamily = "windows_vista"
	OSWindows7     OSFamily = "windows_7"
	OSWindows11    OSFamily = "windows_11"
	OSMacOS        OSFamily = "macos"
	OSLinux        OSFamily = "linux"
)

// OperatingSystem describes the OS installed on a PC. Major/Minor are only
// meaningful for the macOS and Linux families.
type OperatingSystem struct {
	Family OSFamily
	Major  uint16
	Minor  uint16
}

func Linux(major, minor uint16) OperatingSystem {
	return OperatingSystem{Family: OSLinux, Major: major, Minor: minor}
}

func MacOS(major, minor uint16) OperatingSystem {
	return OperatingSystem{Family: OSMacOS, Major: major, Minor: minor}
}

func Windows(family OSFamily) OperatingSystem {
	return OperatingSystem{Family: family}
}

// DefaultOS is installed on entries created without an explicit OS.
func DefaultOS() OperatingSystem {
	return Linux(5, 5)
}

func (o OperatingSystem) IsWindows() bool {
	switch o.Family {
	case OSWindowsXP, OSWindowsVista, OSWindows7, OSWindows11:
		return true
	}
	return false
}

// IsOutdated reports whether the OS is overdue for a maintenance upgrade.
func (o OperatingSystem) IsOutdated() bool {
	switch {
	case o.Family == OSWindowsXP || o.Family == OSWindowsVista:
		return true
	case o.Family == OSLinux && o.Major < 5:
		return true
	}
	return false
}

func (o OperatingSystem) String() string {
	switch o.Family {
	case OSWindowsXP:
		return "Windows XP"
	case OSWindowsVista:
		return "Windows Vista"
	case OSWindows7:
		return "Windows 7"
	case OSWindows11:
		return "Windows 11"
	case OSMacOS:
		return fmt.Sprintf("macOS %d.%d", o.Major, o.Minor)
	case OSLinux:
		return fmt.Sprintf("Linux %d.%d", o.Major, o.Minor)
	}
	return string(o.Family)
}
