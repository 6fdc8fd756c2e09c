package config

// TrelloSection holds the Trello credentials and board selection inside
// the configuration file.
type TrelloSection struct {
	// APIKey is the Trello API key obtained from https://trello.com/app-key.
	APIKey string `yaml:"api_key,omitempty"`

	// UserToken is the user token authorized against APIKey.
	UserToken string `yaml:"user_token,omitempty"`

	// Board is the identifier of the board that receives imported cards.
	Board string `yaml:"board,omitempty"`
}

// File represents the structure of the daft2trello configuration file.
type File struct {
	// Trello contains the Trello credentials and board selection.
	Trello TrelloSection `yaml:"trello,omitempty"`
}

// Apply copies the file values onto a Config.
// Empty file values leave the Config untouched so defaults and flag
// overrides survive a partial configuration file.
func (f *File) Apply(cfg *Config) {
	if f.Trello.APIKey != "" {
		cfg.APIKey = f.Trello.APIKey
	}
	if f.Trello.UserToken != "" {
		cfg.UserToken = f.Trello.UserToken
	}
	if f.Trello.Board != "" {
		cfg.Board = f.Trello.Board
	}
}
