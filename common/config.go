package common

// LogLevelSetting is a bitmask of LogLevel values that ShPrintf honors.
var LogLevelSetting LogLevel = INFO | WARN | ERROR | FATAL

var EnableDebug bool = false
