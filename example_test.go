package httpc_test

import (
	"context"
	"fmt"
	"time"

	httpc "github.com/frankli0324/go-httpc"
	"github.com/frankli0324/go-httpc/middleware"
)

func ExampleClient() {
	cl := &httpc.Client{}
	req := httpc.NewRequest("http://www.google.com/").
		WithQuery("a", "b").
		WithHeader(httpc.Accept("text/html"))
	resp, err := cl.CtxDo(context.Background(), req)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer resp.Close()
	text, err := resp.Text()
	fmt.Println(err)
	fmt.Println(text)
}

func ExampleClient_Use() {
	cl := &httpc.Client{}
	cl.Use(
		middleware.UserAgent("httpc-example/1.0"),
		middleware.Retry(3, 100*time.Millisecond, middleware.DefaultRetryable),
		middleware.FollowRedirects(10),
	)
	req := httpc.NewRequest("https://example.com/form").
		WithMethod(httpc.MethodPost).
		WithBody(httpc.BodyForm{
			httpc.NameValue{Name: "title", Value: "hello"},
			httpc.FormFile{Name: "upload", File: httpc.File{
				Name:        "a.txt",
				ContentType: httpc.ContentType{Type: "text", Subtype: "plain"},
				Data:        httpc.Plain("hello world"),
			}},
		})
	resp, err := cl.CtxDo(context.Background(), req)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer resp.Close()
	fmt.Println(resp.StatusCode)
}
