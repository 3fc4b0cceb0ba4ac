package d2

import (
	"github.com/0xalexb/d2conf/config"
	tomlparser "github.com/0xalexb/d2conf/config/parser/toml"
)

// Parse accepts a TOML document holding the d2 table at its root.
func Parse(data []byte) (Config, error) {
	tree, err := tomlparser.NewParser().Parse(data, "")
	if err != nil {
		return Config{}, err
	}

	return Accept(tree)
}

// Load runs the full pipeline: fetch the document, parse it, select section
// and accept it. Errors are wrapped by stage; the structured error stays
// reachable through errors.As.
func Load(parser config.Parser, fetcher config.DataFetcher, section string) (Config, error) {
	return config.Provider(Acceptor(), section)(parser, fetcher)
}
