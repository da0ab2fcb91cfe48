package useragent

import "strings"

// Architecture token sets, most specific first: "arm64" must be tested
// before the bare "arm" token, and "x86_64" before "x86".
var (
	amd64Tokens = newKeywordSet("win64; x64", "x86_64", "amd64", "x64;", "x64)")
	arm64Tokens = newKeywordSet("arm64", "aarch64", "arm_64")
	ia32Tokens  = newKeywordSet("i386", "i686", "x86")
)

// DetectCPU identifies the processor architecture from a lower-cased UA
// string. Runs independently of the OS cascade.
func DetectCPU(lowerUA string) CPU {
	switch {
	case amd64Tokens.contains(lowerUA):
		return CPU{Architecture: ArchAMD64}
	case arm64Tokens.contains(lowerUA):
		return CPU{Architecture: ArchARM64}
	case strings.Contains(lowerUA, "arm"):
		return CPU{Architecture: ArchARM}
	case ia32Tokens.contains(lowerUA):
		return CPU{Architecture: ArchIA32}
	default:
		return CPU{Architecture: ArchUnknown}
	}
}
