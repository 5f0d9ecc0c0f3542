// Package httpx holds the small JSON request/response helpers shared by the
// module routers.
package httpx
