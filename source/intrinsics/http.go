package intrinsics

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/rlisp-lang/rlisp/source/object"
	"github.com/rlisp-lang/rlisp/source/settings"
)

var network = map[string]object.IntrinsicFn{
	"request": request,
}

// (request url) makes a GET request and gives the body of the response. Connection failures and
// server errors are retried; anything other than a 2xx response in the end is an error.
func request(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 1); err != nil {
		return err
	}
	url, err := toString(args[0])
	if err != nil {
		return err
	}
	client := retryablehttp.NewClient()
	client.RetryMax = settings.HTTP_RETRY_MAX
	client.HTTPClient.Timeout = settings.HTTP_TIMEOUT_SECS * time.Second
	client.Logger = env.Log
	resp, e := client.Get(url)
	if e != nil {
		return object.NewCustom(REQUEST_FAILED, "request to "+url+" failed: "+e.Error())
	}
	defer resp.Body.Close()
	body, e := io.ReadAll(resp.Body)
	if e != nil {
		return object.NewCustom(REQUEST_FAILED, "could not read response from "+url+": "+e.Error())
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return object.NewCustom(REQUEST_FAILED, "request to "+url+" failed with status "+strconv.Itoa(resp.StatusCode))
	}
	return str(string(body))
}
