package config

type BuildType int

const (
	RELEASE BuildType = iota
	DEBUG
)

func (bt BuildType) String() string {
	switch bt {
	case RELEASE:
		return "release"
	case DEBUG:
		return "debug"
	}
	return "unknown"
}

// OptLevel is the optimization flag handed to opt and clang.
func (bt BuildType) OptLevel() string {
	if bt == RELEASE {
		return "-O3"
	}
	return "-O0"
}
