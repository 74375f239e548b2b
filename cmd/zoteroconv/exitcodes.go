package main

// Exit codes surfaced to the invoking shell.
const (
	ExitSuccess       = 0
	ExitError         = 1 // invalid arguments, wiring failure
	ExitInputNotFound = 2 // input report missing
	ExitParseFailure  = 3 // input not decodable as text
	ExitWriteFailure  = 4 // output destination unwritable
)
