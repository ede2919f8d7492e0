// package http contains the request and response model, which is meant
// to be exported. everything here is surfaced through aliases in the
// top level package so that users never import internal paths directly,
// while the model stays decoupled from the client machinery
package http
