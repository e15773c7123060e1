package internal

//go:generate sh -c "go run ../cmd/ast Expr > expr.go"
//go:generate sh -c "go run ../cmd/ast Stmt > stmt.go"
