// Package dialog implements the modal dialogs of the shell, chiefly
// the keyboard shortcut editor. A dialog is a ui.Widget meant to be
// installed as the window's modal layer.
package dialog
