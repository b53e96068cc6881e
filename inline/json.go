package inline

import (
	"encoding/json"
	"io"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/movieflix-cli/movieflix/catalog"
)

type Output struct {
	Query    string           `json:"query"`
	Category catalog.Category `json:"category" jsonschema:"enum=all,enum=animation,enum=commercial,enum=documentary"`
	Result   []*catalog.Movie `json:"result"`
}

func asJson(movies []*catalog.Movie, options *Options) ([]byte, error) {
	if movies == nil {
		movies = []*catalog.Movie{}
	}

	return json.Marshal(&Output{
		Query:    options.Query,
		Category: options.Category,
		Result:   movies,
	})
}

func writeJson(out io.Writer, movies []*catalog.Movie, options *Options) error {
	data, err := asJson(movies, options)
	if err != nil {
		return err
	}
	_, err = out.Write(append(data, '\n'))
	return err
}

// Schema describes the JSON document written with Options.Json.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		switch name := t.Name(); strings.ToLower(name) {
		case "movie", "output":
			return t.PkgPath()[strings.LastIndex(t.PkgPath(), "/")+1:] + "." + name
		default:
			return name
		}
	}

	return reflector.Reflect(&Output{})
}
