package assistantnode

const addMenu = "What would you like to do next?\n" +
	"- Add another item by typing 'add <product name>'\n" +
	"- Type 'refine <query>' to search for different products\n" +
	"- Type 'view cart' to see your cart\n" +
	"- Type 'checkout' to proceed to checkout"

// runAdd resolves the typed fragment against everything shown this session:
// current results first, then recommendations, then previous results. First
// match wins.
func runAdd(in *GraphState) {
	product, ok := in.Session.FindProduct(in.Cmd.Name)
	if !ok {
		in.Say("Product not found in recommendations.")
		in.Say(renderAvailableProducts(in))
		in.Say(addMenu)
		return
	}

	in.Say(in.Session.Cart.Add(product))
	in.Say(in.Session.Cart.Summary())
	in.Say(addMenu)
}

func runUpdate(in *GraphState) {
	ok, msg := in.Session.Cart.UpdateQuantity(in.Cmd.Name, in.Cmd.Quantity)
	in.Say(msg)
	if ok {
		in.Say(in.Session.Cart.Summary())
	}
}

func runRemove(in *GraphState) {
	ok, msg := in.Session.Cart.Remove(in.Cmd.Name)
	in.Say(msg)
	if ok {
		in.Say(in.Session.Cart.Summary())
	}
}
