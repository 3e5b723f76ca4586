package session

// Command is the closed set of operations a session can dispatch. Parsing
// happens at the command surface; by the time a Command reaches Dispatch its
// arguments are well-formed.
type Command interface {
	CommandName() string
}

type CreateAccount struct {
	Name       string
	Passphrase string
}

func (CreateAccount) CommandName() string { return "create" }

type SelectAccount struct {
	Name       string
	Passphrase string
}

func (SelectAccount) CommandName() string { return "use" }

type ListAccounts struct{}

func (ListAccounts) CommandName() string { return "list" }

type GetBalance struct{}

func (GetBalance) CommandName() string { return "balance" }

type NewAddress struct{}

func (NewAddress) CommandName() string { return "address" }

type ListAddresses struct{}

func (ListAddresses) CommandName() string { return "addresses" }

type ListTransactions struct {
	Limit int
}

func (ListTransactions) CommandName() string { return "transactions" }

type Send struct {
	To     string
	Amount uint64
	Memo   string
}

func (Send) CommandName() string { return "send" }

type Sync struct{}

func (Sync) CommandName() string { return "sync" }

type Rename struct {
	NewName string
}

func (Rename) CommandName() string { return "rename" }

type DeleteAccount struct{}

func (DeleteAccount) CommandName() string { return "delete" }

type Cancel struct{}

func (Cancel) CommandName() string { return "cancel" }

type Exit struct{}

func (Exit) CommandName() string { return "exit" }
