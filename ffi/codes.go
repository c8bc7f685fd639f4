package ffi

import "fmt"

// Code is the primary outcome class of a native call. Values match
// rocksdb::Status::Code.
type Code uint8

const (
	CodeOK Code = iota
	CodeNotFound
	CodeCorruption
	CodeNotSupported
	CodeInvalidArgument
	CodeIOError
	CodeMergeInProgress
	CodeIncomplete
	CodeShutdownInProgress
	CodeTimedOut
	CodeAborted
	CodeBusy
	CodeExpired
	CodeTryAgain
	CodeCompactionTooLarge
	CodeColumnFamilyDropped
	CodeMaxCode
)

var codeNames = [...]string{
	CodeOK:                  "OK",
	CodeNotFound:            "NotFound",
	CodeCorruption:          "Corruption",
	CodeNotSupported:        "NotSupported",
	CodeInvalidArgument:     "InvalidArgument",
	CodeIOError:             "IOError",
	CodeMergeInProgress:     "MergeInProgress",
	CodeIncomplete:          "Incomplete",
	CodeShutdownInProgress:  "ShutdownInProgress",
	CodeTimedOut:            "TimedOut",
	CodeAborted:             "Aborted",
	CodeBusy:                "Busy",
	CodeExpired:             "Expired",
	CodeTryAgain:            "TryAgain",
	CodeCompactionTooLarge:  "CompactionTooLarge",
	CodeColumnFamilyDropped: "ColumnFamilyDropped",
}

// Prefixes used by rocksdb::Status::ToString.
var codePrefixes = [...]string{
	CodeOK:                  "OK",
	CodeNotFound:            "NotFound: ",
	CodeCorruption:          "Corruption: ",
	CodeNotSupported:        "Not implemented: ",
	CodeInvalidArgument:     "Invalid argument: ",
	CodeIOError:             "IO error: ",
	CodeMergeInProgress:     "Merge in progress: ",
	CodeIncomplete:          "Result incomplete: ",
	CodeShutdownInProgress:  "Shutdown in progress: ",
	CodeTimedOut:            "Operation timed out: ",
	CodeAborted:             "Operation aborted: ",
	CodeBusy:                "Resource busy: ",
	CodeExpired:             "Operation expired: ",
	CodeTryAgain:            "Operation failed. Try again.: ",
	CodeCompactionTooLarge:  "Compaction too large: ",
	CodeColumnFamilyDropped: "Column family dropped: ",
}

func (c Code) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("Code(%d)", uint8(c))
}

func (c Code) prefix() string {
	if int(c) < len(codePrefixes) {
		return codePrefixes[c]
	}
	return fmt.Sprintf("Unknown code(%d): ", uint8(c))
}

// SubCode refines a failure class. Values match rocksdb::Status::SubCode.
type SubCode uint8

const (
	SubCodeNone SubCode = iota
	SubCodeMutexTimeout
	SubCodeLockTimeout
	SubCodeLockLimit
	SubCodeNoSpace
	SubCodeDeadlock
	SubCodeStaleFile
	SubCodeMemoryLimit
	SubCodeSpaceLimit
	SubCodePathNotFound
	SubCodeMergeOperandsInsufficientCapacity
	SubCodeManualCompactionPaused
	SubCodeOverwritten
	SubCodeTxnNotPrepared
	SubCodeIOFenced
	SubCodeMaxSubCode
)

var subCodeNames = [...]string{
	SubCodeNone:                              "None",
	SubCodeMutexTimeout:                      "MutexTimeout",
	SubCodeLockTimeout:                       "LockTimeout",
	SubCodeLockLimit:                         "LockLimit",
	SubCodeNoSpace:                           "NoSpace",
	SubCodeDeadlock:                          "Deadlock",
	SubCodeStaleFile:                         "StaleFile",
	SubCodeMemoryLimit:                       "MemoryLimit",
	SubCodeSpaceLimit:                        "SpaceLimit",
	SubCodePathNotFound:                      "PathNotFound",
	SubCodeMergeOperandsInsufficientCapacity: "MergeOperandsInsufficientCapacity",
	SubCodeManualCompactionPaused:            "ManualCompactionPaused",
	SubCodeOverwritten:                       "Overwritten",
	SubCodeTxnNotPrepared:                    "TxnNotPrepared",
	SubCodeIOFenced:                          "IOFenced",
}

// Messages appended by rocksdb::Status::ToString.
var subCodeMessages = [...]string{
	SubCodeNone:                              "",
	SubCodeMutexTimeout:                      "Timeout Acquiring Mutex",
	SubCodeLockTimeout:                       "Timeout waiting to lock key",
	SubCodeLockLimit:                         "Failed to acquire lock due to max_num_locks limit",
	SubCodeNoSpace:                           "No space left on device",
	SubCodeDeadlock:                          "Deadlock",
	SubCodeStaleFile:                         "Stale file handle",
	SubCodeMemoryLimit:                       "Memory limit reached",
	SubCodeSpaceLimit:                        "Space limit reached",
	SubCodePathNotFound:                      "No such file or directory",
	SubCodeMergeOperandsInsufficientCapacity: "Insufficient capacity for merge operands",
	SubCodeManualCompactionPaused:            "Manual compaction paused",
	SubCodeOverwritten:                       " (overwritten)",
	SubCodeTxnNotPrepared:                    "Txn not prepared",
	SubCodeIOFenced:                          "IO fenced off",
}

func (s SubCode) String() string {
	if int(s) < len(subCodeNames) {
		return subCodeNames[s]
	}
	return fmt.Sprintf("SubCode(%d)", uint8(s))
}

func (s SubCode) message() string {
	if int(s) < len(subCodeMessages) {
		return subCodeMessages[s]
	}
	return s.String()
}

// Severity ranks how bad a failure is. Values match
// rocksdb::Status::Severity.
type Severity uint8

const (
	SeverityNoError Severity = iota
	SeveritySoftError
	SeverityHardError
	SeverityFatalError
	SeverityUnrecoverableError
	SeverityMaxSeverity
)

var severityNames = [...]string{
	SeverityNoError:            "NoError",
	SeveritySoftError:          "SoftError",
	SeverityHardError:          "HardError",
	SeverityFatalError:         "FatalError",
	SeverityUnrecoverableError: "UnrecoverableError",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return fmt.Sprintf("Severity(%d)", uint8(s))
}
