// All this does is contain in one place the constants controlling which bits of the inner workings of the
// reader and evaluator are shown for debugging purposes. In a release the SHOW_ flags must all be false.

package settings

const (
	// These do what it sounds like.
	SHOW_LEXER  = false
	SHOW_PARSER = false
	SHOW_EVAL   = false // Logs every call the evaluator makes, with the scope depth, at debug level.

	SHOW_TESTS = false // Says whether the tests should say what is being tested, useful if one of them crashes and we don't know which.

	IMPORT_CACHE_SIZE = 64 // Number of parsed files the loader keeps.
	HTTP_RETRY_MAX    = 2  // Retries made by 'request' before it gives up.
	HTTP_TIMEOUT_SECS = 30

	LIBRARY_FILE = "loader.rl" // Looked for in $RLISP_HOME when no --lib is given.
	HOME_VAR     = "RLISP_HOME"
)
