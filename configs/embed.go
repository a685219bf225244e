package configs

import _ "embed"

// ApplicationYAML is the bundled copy of application.yml, used when PROPERTIES_FILE_PATH is not set.
//
//go:embed application.yml
var ApplicationYAML []byte

// MessagesYAML is the bundled copy of messages.yml, used when MESSAGES_FILE_PATH is not set.
//
//go:embed messages.yml
var MessagesYAML []byte
