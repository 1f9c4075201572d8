// Package tcp implements TCP socket based transport for the RPC system. It provides
// concrete implementations of the base package's connector interfaces.
//
// Both sides apply the socket options from common.TCPConf and common.SocketConf
// (no delay, keep-alive, linger and buffer sizes) to every connection.
//
// The default server buffer size is set to 512 KB.
package tcp
