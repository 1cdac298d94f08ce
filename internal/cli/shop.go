package cli

import "fmt"

type ShopCmd struct {
	List ShopListCmd `cmd:"" help:"List shop items." default:"1"`
	Buy  ShopBuyCmd  `cmd:"" help:"Buy a shop item."`
}

type ShopListCmd struct{}

func (c *ShopListCmd) Run(ctx *Context) error {
	stats := ctx.Engine.Stats()
	fmt.Printf("Wallet: %d coins\n\n", stats.Coins)

	for _, item := range ctx.Engine.Catalog().Shop {
		affordable := " "
		if stats.Coins >= item.Cost {
			affordable = "✓"
		}
		fmt.Printf("%s %-16s %4d coins — %s\n", affordable, item.ID, item.Cost, item.Description)
	}
	return nil
}

type ShopBuyCmd struct {
	Item string `arg:"" help:"Item id to buy (see 'shop list')."`
}

func (c *ShopBuyCmd) Run(ctx *Context) error {
	_, notices, err := ctx.Engine.Purchase(c.Item)
	if err != nil {
		return err
	}
	PrintNotices(notices)
	return nil
}
